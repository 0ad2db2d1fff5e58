package intake

import "fmt"

// State holds the five sign-up fields as the user typed them.
type State struct {
	Name  string
	Age   string
	City  string
	Phone string
	Email string
}

const (
	FieldName  = "name"
	FieldAge   = "age"
	FieldCity  = "city"
	FieldPhone = "phone"
	FieldEmail = "email"
)

// UpdateField writes value into the named field, leaving the others
// untouched. No validation happens here.
func (s *State) UpdateField(field, value string) error {
	switch field {
	case FieldName:
		s.Name = value
	case FieldAge:
		s.Age = value
	case FieldCity:
		s.City = value
	case FieldPhone:
		s.Phone = value
	case FieldEmail:
		s.Email = value
	default:
		return fmt.Errorf("unknown field: %s", field)
	}
	return nil
}

// Reset clears all five fields back to empty strings.
func (s *State) Reset() {
	*s = State{}
}
