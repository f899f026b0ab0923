package models

import "time"

// Contact is a person the CRM communicates with. Rows are owned by the
// contact CRUD service; this module only reads them and flips the SMS
// opt-out flag.
type Contact struct {
	ID        string    `db:"id" json:"id"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	Email     *string   `db:"email" json:"email,omitempty"`
	SMSOptOut bool      `db:"sms_opt_out" json:"sms_opt_out"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// FullName joins first and last name.
func (c *Contact) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// Address returns the destination for the given channel, or "" when the
// contact has none.
func (c *Contact) Address(ch Channel) string {
	switch ch {
	case ChannelSMS, ChannelVoice:
		if c.Phone != nil {
			return *c.Phone
		}
	case ChannelEmail:
		if c.Email != nil {
			return *c.Email
		}
	}
	return ""
}
