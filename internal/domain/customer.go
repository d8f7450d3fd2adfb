package domain

type Customer struct {
	ID        string `validate:"required"`
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,email"`
	AddressID string
}

func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
