package service

import (
	"context"
	"log/slog"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

// EventRecorder stores generation events for the stats endpoint.
type EventRecorder interface {
	Record(ctx context.Context, event *model.GenerationEvent) error
	CountByStrength(ctx context.Context) (map[string]int64, error)
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen           *crypto.Generator
	recorder      EventRecorder
	defaultLength int
}

// NewGeneratorService creates a new GeneratorService. recorder may be nil, in
// which case nothing is recorded and Stats reports ErrStatsUnavailable.
func NewGeneratorService(gen *crypto.Generator, recorder EventRecorder, defaultLength int) *GeneratorService {
	if gen == nil {
		gen = crypto.NewGenerator(nil)
	}
	if defaultLength == 0 {
		defaultLength = 10
	}
	return &GeneratorService{
		gen:           gen,
		recorder:      recorder,
		defaultLength: defaultLength,
	}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	length, classes := s.options(req)

	password, err := s.gen.Generate(length, classes)
	if err != nil {
		return model.GenerateResponse{}, err
	}
	if password == "" {
		return model.GenerateResponse{}, crypto.ErrNoCharacterTypes
	}

	strength := crypto.EvaluateClasses(length, classes)
	s.record(ctx, length, classes, strength)

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Strength: strength.String(),
		Color:    strength.Color(),
		Score:    crypto.Score(password),
	}, nil
}

// Strength rates the requested configuration without generating anything.
func (s *GeneratorService) Strength(req model.GenerateRequest) (model.StrengthResponse, error) {
	length, classes := s.options(req)
	if length < crypto.MinLength || length > crypto.MaxLength {
		return model.StrengthResponse{}, crypto.ErrInvalidLength
	}

	strength := crypto.EvaluateClasses(length, classes)
	return model.StrengthResponse{
		Length:   length,
		Strength: strength.String(),
		Color:    strength.Color(),
	}, nil
}

// Stats returns the number of recorded generations per strength tier.
func (s *GeneratorService) Stats(ctx context.Context) (model.StatsResponse, error) {
	if s.recorder == nil {
		return model.StatsResponse{}, ErrStatsUnavailable
	}

	counts, err := s.recorder.CountByStrength(ctx)
	if err != nil {
		return model.StatsResponse{}, err
	}

	resp := model.StatsResponse{ByStrength: make(map[string]int64, 3)}
	for _, tier := range []crypto.Strength{crypto.Weak, crypto.Medium, crypto.Strong} {
		n := counts[tier.String()]
		resp.ByStrength[tier.String()] = n
		resp.Total += n
	}
	return resp, nil
}

func (s *GeneratorService) options(req model.GenerateRequest) (int, crypto.ClassSet) {
	length := req.Length
	if length == 0 {
		length = s.defaultLength
	}

	classes := crypto.ClassSetFromFlags(
		boolOrDefault(req.Uppercase, true),
		boolOrDefault(req.Lowercase, true),
		boolOrDefault(req.Numbers, true),
		boolOrDefault(req.Symbols, true),
	)
	return length, classes
}

// record stores the event. Failures are logged and never reach the caller.
func (s *GeneratorService) record(ctx context.Context, length int, classes crypto.ClassSet, strength crypto.Strength) {
	if s.recorder == nil {
		return
	}

	event := &model.GenerationEvent{
		Length:   length,
		Classes:  classes.String(),
		Strength: strength.String(),
	}
	if err := s.recorder.Record(ctx, event); err != nil {
		slog.Warn("recording generation event failed", "error", err)
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
