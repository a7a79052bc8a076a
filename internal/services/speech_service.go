package services

import (
	"context"
	"errors"

	"medconsult/internal/gateway"
	"medconsult/internal/models"
)

// ErrVoiceDisabled is returned by Speak while voice output is switched off.
var ErrVoiceDisabled = errors.New("voice output is disabled")

type SpeechGateway interface {
	SpeechToText(ctx context.Context, audio gateway.Audio, opts gateway.STTOptions) (*models.SpeechToTextResult, error)
	TextToSpeech(ctx context.Context, text string, opts gateway.TTSOptions) (*models.TextToSpeechResult, error)
	TranslateSpeech(ctx context.Context, audio gateway.Audio, opts gateway.TranslateOptions) (*models.TranslateSpeechResult, error)
}

// SpeechService runs the speech endpoints with options taken from the
// current settings.
type SpeechService struct {
	gateway  SpeechGateway
	settings SettingsService
	context  context.Context
}

func NewSpeechService(gw SpeechGateway, settings SettingsService) *SpeechService {
	return &SpeechService{gateway: gw, settings: settings}
}

func (s *SpeechService) Startup(ctx context.Context) {
	s.context = ctx
}

// Transcribe converts a recording in the preferred language to text.
func (s *SpeechService) Transcribe(audio []byte, fileName string) (*models.SpeechToTextResult, error) {
	current := s.settings.Get()
	return s.gateway.SpeechToText(s.ctx(), gateway.Audio{Data: audio, Name: fileName}, gateway.STTOptions{
		SourceLanguage:   current.PreferredLanguage,
		EnableAutoDetect: current.AutoDetectLanguage,
	})
}

// Speak synthesizes text in the preferred language with the chosen voice.
func (s *SpeechService) Speak(text string) (*models.TextToSpeechResult, error) {
	current := s.settings.Get()
	if !current.Voice.Enabled {
		return nil, ErrVoiceDisabled
	}
	return s.gateway.TextToSpeech(s.ctx(), text, gateway.TTSOptions{
		TargetLanguage: current.PreferredLanguage,
		VoiceGender:    current.Voice.Gender,
	})
}

// Translate transcribes a recording spoken in the preferred language and
// translates it into target, or into the interface language when target is
// empty.
func (s *SpeechService) Translate(audio []byte, fileName, target string) (*models.TranslateSpeechResult, error) {
	current := s.settings.Get()
	if target == "" {
		target = current.InterfaceLanguage
	}
	autoDetect := current.AutoDetectLanguage
	return s.gateway.TranslateSpeech(s.ctx(), gateway.Audio{Data: audio, Name: fileName}, gateway.TranslateOptions{
		SourceLanguage: current.PreferredLanguage,
		TargetLanguage: target,
		AutoDetect:     &autoDetect,
		VoiceGender:    current.Voice.Gender,
	})
}

func (s *SpeechService) ctx() context.Context {
	if s.context == nil {
		return context.Background()
	}
	return s.context
}
