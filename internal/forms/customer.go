package forms

// Messages surfaced to the form when a customer field is rejected.
const (
	MsgEnterName  = "Please enter a name."
	MsgEnterEmail = "Please enter a valid email address."
	MsgValidImage = "Please select a valid image file."
)

// CustomerForm carries the raw customer form fields. Image holds the uploaded
// blob when the request included one; ImageName and ImageType describe it for
// the upload collaborator and are not validated.
type CustomerForm struct {
	Name      string `form:"name" validate:"required"`
	Email     string `form:"email" validate:"required,email"`
	Image     []byte `form:"image"`
	ImageName string `form:"-"`
	ImageType string `form:"-"`
}

// CustomerFields is the coerced output of a successful validation.
type CustomerFields struct {
	Name  string
	Email string
	Image []byte
}

var customerMessages = map[string]string{
	"name":  MsgEnterName,
	"email": MsgEnterEmail,
}

// Validate checks the schema rules. The image rule is only enforced when a
// real upload collaborator is attached (requireImage); with the placeholder
// uploader the blob is never consulted.
func (f CustomerForm) Validate(requireImage bool) (CustomerFields, FieldErrors) {
	errs := FieldErrors{}
	if err := validate.Struct(f); err != nil {
		for _, fe := range violations(err) {
			field := fe.Field()
			errs[field] = append(errs[field], customerMessages[field])
		}
	}
	if requireImage && len(f.Image) == 0 {
		errs["image"] = append(errs["image"], MsgValidImage)
	}
	if len(errs) > 0 {
		return CustomerFields{}, errs
	}
	return CustomerFields{Name: f.Name, Email: f.Email, Image: f.Image}, nil
}
