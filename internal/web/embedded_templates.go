package web

import "embed"

//go:embed templates/*
var EmbeddedTemplatesFS embed.FS
