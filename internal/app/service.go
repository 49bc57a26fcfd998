package app

import (
	"slidecraft/internal/llm"
	"slidecraft/internal/render"
	"slidecraft/internal/storage"
	"slidecraft/pkg/config"
	"slidecraft/pkg/prompts"
)

type ServiceOptions struct {
	Config   *config.Config
	Prompts  *prompts.Prompts
	LLM      llm.Client
	Renderer *render.Renderer
	Storage  *storage.LocalStorage
	GCS      *storage.GCSStorage
}

type Service struct {
	opts ServiceOptions
}

func NewService(opts ServiceOptions) *Service {
	return &Service{opts: opts}
}

func (s *Service) Config() *config.Config         { return s.opts.Config }
func (s *Service) Prompts() *prompts.Prompts      { return s.opts.Prompts }
func (s *Service) LLM() llm.Client                { return s.opts.LLM }
func (s *Service) Renderer() *render.Renderer     { return s.opts.Renderer }
func (s *Service) Storage() *storage.LocalStorage { return s.opts.Storage }
func (s *Service) GCS() *storage.GCSStorage       { return s.opts.GCS }
