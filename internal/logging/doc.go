// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package logging provides the zerolog-based structured logger used across
// Marquee.
//
// A single global logger is configured once from the logging section of the
// configuration (LOG_LEVEL, LOG_FORMAT, LOG_CALLER). JSON output is the
// default; console output is intended for local development.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Int("items", n).Msg("Library loaded")
//	logging.Error().Err(err).Msg("Dashboard render failed")
//
// # Request Context
//
// HTTP middleware stores a request ID in the request context. Handlers log
// through Ctx so every line carries it:
//
//	logging.Ctx(r.Context()).Warn().Str("chart", name).Msg("Unknown chart")
//
// # slog Bridge
//
// The supervisor tree (suture) logs through log/slog. NewSlogLogger returns an
// slog.Logger whose records are written by the global zerolog logger.
//
// Always terminate event chains with .Msg() or .Send(); an unterminated event
// is never written.
package logging
