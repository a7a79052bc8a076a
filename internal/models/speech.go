package models

// SpeechLanguage describes the language the speech service settled on.
type SpeechLanguage struct {
	Detected   *bool   `json:"detected,omitempty"`
	Code       string  `json:"code"`
	Name       string  `json:"name,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

type SpeechToTextResult struct {
	Status          string         `json:"status"`
	Text            string         `json:"text"`
	Language        SpeechLanguage `json:"language"`
	Confidence      float64        `json:"confidence"`
	Timestamp       string         `json:"timestamp,omitempty"`
	WasAutoDetected bool           `json:"was_auto_detected"`
}

type SpeechVoice struct {
	Gender string `json:"gender"`
	Style  string `json:"style,omitempty"`
}

type TextToSpeechResult struct {
	Status    string         `json:"status"`
	AudioData string         `json:"audio_data"`
	Language  SpeechLanguage `json:"language"`
	Voice     SpeechVoice    `json:"voice"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

type SpeechSegment struct {
	Text     string         `json:"text"`
	Audio    string         `json:"audio,omitempty"`
	Language SpeechLanguage `json:"language"`
}

type TranslateSpeechResult struct {
	Status      string        `json:"status"`
	Original    SpeechSegment `json:"original"`
	Translation SpeechSegment `json:"translation"`
}
