package validation

// UserInput is the normalized payload for user create/update.
type UserInput struct {
	Username string
	Password string
	Email    string
}

var userSchema = Schema{Rules: []Rule{
	{Name: "username", Kind: String, Required: true},
	{Name: "password", Kind: String, Required: true},
	{Name: "email", Kind: String, Required: true, Email: true},
}}

func User(payload map[string]any) (*UserInput, []FieldError) {
	data, errs := userSchema.Validate(payload)
	if errs != nil {
		return nil, errs
	}
	return &UserInput{
		Username: stringAt(data, "username"),
		Password: stringAt(data, "password"),
		Email:    stringAt(data, "email"),
	}, nil
}
