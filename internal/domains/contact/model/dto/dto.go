package dto

import (
	"hotel/internal/domains/contact/model"
	"hotel/shared/constant"
	"hotel/shared/timezone"
)

type CreateContactRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName"  validate:"required,max=100"`
	Email     string `json:"email"     validate:"required,email,max=100"`
	Phone     string `json:"phone"     validate:"omitempty,max=20"`
	Subject   string `json:"subject"   validate:"required,max=200"`
	Message   string `json:"message"   validate:"required,max=5000"`
}

func (c *CreateContactRequest) ToModel() model.Contact {
	return model.Contact{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Subject:   c.Subject,
		Message:   c.Message,
	}
}

type ContactResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Subject   string  `json:"subject"`
	Message   string  `json:"message"`
	CreatedAt string  `json:"createdAt"`
}

func (c *ContactResponse) FromModel(model model.Contact) {
	c.ID = model.ID
	c.FirstName = model.FirstName
	c.LastName = model.LastName
	c.Email = model.Email
	c.Subject = model.Subject
	c.Message = model.Message
	c.CreatedAt = timezone.Format(model.CreatedAt, constant.TimestampFormat)

	if model.Phone != constant.Empty {
		phone := model.Phone
		c.Phone = &phone
	}
}

func FromModels(models []model.Contact) []ContactResponse {
	contacts := make([]ContactResponse, 0, len(models))

	for _, m := range models {
		var contact ContactResponse

		contact.FromModel(m)
		contacts = append(contacts, contact)
	}

	return contacts
}
