package web

import "embed"

// StaticFS holds the embedded static assets (stylesheet, images).
//
//go:embed static/*
var StaticFS embed.FS
