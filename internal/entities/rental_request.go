package entities

// SubmitRequestInput is a public "rent out your own vehicle" submission.
type SubmitRequestInput struct {
	DepositorName  string   `json:"depositor_name"`
	DepositorEmail string   `json:"depositor_email"`
	DepositorPhone string   `json:"depositor_phone,omitempty"`
	Brand          string   `json:"brand"`
	Model          string   `json:"model"`
	Description    string   `json:"description,omitempty"`
	Photos         []string `json:"photos,omitempty"`
}

// LeadInput is a contact-form submission.
type LeadInput struct {
	Name        string `json:"name"`
	Contact     string `json:"contact"`
	VehicleSlug string `json:"vehicle_slug,omitempty"`
	Message     string `json:"message,omitempty"`
}
