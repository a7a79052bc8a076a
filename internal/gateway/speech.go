package gateway

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"medconsult/internal/models"
)

const defaultAudioName = "recording.webm"

// Audio is a recorded clip uploaded to the speech endpoints.
type Audio struct {
	Data []byte
	// Name is the upload file name; the backend sniffs the format from it.
	Name string
}

type STTOptions struct {
	SourceLanguage   string
	EnableAutoDetect bool
}

type TTSOptions struct {
	TargetLanguage string
	VoiceGender    models.VoiceGender
	VoiceStyle     string
}

type TranslateOptions struct {
	SourceLanguage string
	TargetLanguage string
	// AutoDetect defaults to true when nil.
	AutoDetect  *bool
	VoiceGender models.VoiceGender
}

var errEmptyAudio = errors.New("audio is empty")

// SpeechToText transcribes audio.
func (c *Client) SpeechToText(ctx context.Context, audio Audio, opts STTOptions) (*models.SpeechToTextResult, error) {
	const op = "speech to text"
	fields := [][2]string{}
	if opts.SourceLanguage != "" {
		fields = append(fields, [2]string{"source_language", opts.SourceLanguage})
	}
	if opts.EnableAutoDetect {
		fields = append(fields, [2]string{"enable_auto_detect", "true"})
	}

	var out models.SpeechToTextResult
	if err := c.postMultipart(ctx, op, "/api/speech/speech-to-text", audio, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TextToSpeech synthesizes text.
func (c *Client) TextToSpeech(ctx context.Context, text string, opts TTSOptions) (*models.TextToSpeechResult, error) {
	body := struct {
		Text           string `json:"text"`
		TargetLanguage string `json:"target_language"`
		VoiceGender    string `json:"voice_gender"`
		VoiceStyle     string `json:"voice_style,omitempty"`
	}{
		Text:           text,
		TargetLanguage: orDefault(opts.TargetLanguage, "en"),
		VoiceGender:    orDefault(string(opts.VoiceGender), string(models.VoiceFemale)),
		VoiceStyle:     opts.VoiceStyle,
	}

	var out models.TextToSpeechResult
	if err := c.postJSON(ctx, "text to speech", "/api/speech/text-to-speech", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TranslateSpeech transcribes audio and returns its translation as text and audio.
func (c *Client) TranslateSpeech(ctx context.Context, audio Audio, opts TranslateOptions) (*models.TranslateSpeechResult, error) {
	const op = "translate speech"
	autoDetect := true
	if opts.AutoDetect != nil {
		autoDetect = *opts.AutoDetect
	}

	fields := [][2]string{}
	if opts.SourceLanguage != "" {
		fields = append(fields, [2]string{"source_language", opts.SourceLanguage})
	}
	fields = append(fields,
		[2]string{"target_language", orDefault(opts.TargetLanguage, "en")},
		[2]string{"auto_detect", strconv.FormatBool(autoDetect)},
		[2]string{"voice_gender", orDefault(string(opts.VoiceGender), string(models.VoiceFemale))},
	)

	var out models.TranslateSpeechResult
	if err := c.postMultipart(ctx, op, "/api/speech/translate-speech", audio, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) postMultipart(ctx context.Context, op, path string, audio Audio, fields [][2]string, out any) error {
	if len(audio.Data) == 0 {
		return &FetchError{Op: op, Err: errEmptyAudio}
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("audio", orDefault(audio.Name, defaultAudioName))
	if err != nil {
		return &FetchError{Op: op, Err: err}
	}
	if _, err := part.Write(audio.Data); err != nil {
		return &FetchError{Op: op, Err: err}
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return &FetchError{Op: op, Err: err}
		}
	}
	if err := w.Close(); err != nil {
		return &FetchError{Op: op, Err: err}
	}

	return c.doJSON(ctx, request{
		op:          op,
		method:      http.MethodPost,
		path:        path,
		body:        &buf,
		contentType: w.FormDataContentType(),
	}, out)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
