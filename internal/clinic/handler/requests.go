package handler

type admitRequest struct {
	CPF  string `json:"cpf" validate:"required"`
	Name string `json:"name" validate:"max=128"`
	Age  int    `json:"age" validate:"gte=0,lte=150"`
	Sex  string `json:"sex" validate:"max=16"`
}

// scheduleRequest keeps date and time as free text, as entered.
type scheduleRequest struct {
	DoctorNumber int    `json:"doctor_number" validate:"required,gte=1"`
	Date         string `json:"date" validate:"max=32"`
	Time         string `json:"time" validate:"max=32"`
	Reason       string `json:"reason" validate:"max=512"`
}
