package models

// LanguagePreferences are the language choices stored with a consultation on
// the server. Either field may be absent.
type LanguagePreferences struct {
	Preferred *string `json:"preferred,omitempty"`
	Interface *string `json:"interface,omitempty"`
}

// UserDetails is the patient record sent when a consultation starts.
type UserDetails struct {
	FirstName           string            `json:"firstName"`
	LastName            string            `json:"lastName"`
	Age                 int               `json:"age,omitempty"`
	Gender              string            `json:"gender,omitempty"`
	Height              float64           `json:"height,omitempty"`
	Weight              float64           `json:"weight,omitempty"`
	Email               string            `json:"email,omitempty"`
	Mobile              string            `json:"mobile,omitempty"`
	PreferredLanguage   string            `json:"preferred_language,omitempty"`
	InterfaceLanguage   string            `json:"interface_language,omitempty"`
	EnableAutoDetection *bool             `json:"enable_auto_detection,omitempty"`
	MedicalHistory      map[string]string `json:"medical_history,omitempty"`
}

// Consultation is the server-owned session record. The client only reads it.
type Consultation struct {
	ID                  string               `json:"consultationId"`
	Status              string               `json:"status,omitempty"`
	UserDetails         UserDetails          `json:"userDetails"`
	CreatedAt           string               `json:"created_at,omitempty"`
	LanguagePreferences *LanguagePreferences `json:"language_preferences,omitempty"`
}

// StartResult is returned when a consultation is created.
type StartResult struct {
	Status         string      `json:"status,omitempty"`
	ConsultationID string      `json:"consultationId"`
	UserDetails    UserDetails `json:"userDetails"`
	Message        string      `json:"message,omitempty"`
}

// Summary is the diagnostic summary document. Its shape belongs to the
// backend, so it is kept as decoded JSON.
type Summary map[string]any

// Feedback is the post-consultation rating form.
type Feedback struct {
	ConsultationID            string `json:"consultation_id"`
	Rating                    int    `json:"rating"`
	SymptomAccuracy           int    `json:"symptom_accuracy"`
	RecommendationHelpfulness int    `json:"recommendation_helpfulness"`
	Comment                   string `json:"comment,omitempty"`
}

// FeedbackAck is the stored feedback echoed back by the server.
type FeedbackAck struct {
	ID             string `json:"id"`
	ConsultationID string `json:"consultation_id"`
	Rating         int    `json:"rating"`
	CreatedAt      string `json:"created_at,omitempty"`
}

// ChatMessage is one entry of the consultation transcript.
type ChatMessage struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Language  string `json:"language,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// ConsultationState is what the consultation page renders from.
type ConsultationState struct {
	Loading        bool          `json:"loading"`
	Error          string        `json:"error,omitempty"`
	ConsultationID string        `json:"consultationId,omitempty"`
	Consultation   *Consultation `json:"consultation,omitempty"`
	UserDetails    *UserDetails  `json:"userDetails,omitempty"`
	ChatHistory    []ChatMessage `json:"chatHistory"`
	Diagnosis      Summary       `json:"diagnosis,omitempty"`
}
