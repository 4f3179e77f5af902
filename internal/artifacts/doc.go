// Package artifacts generates the per-platform files the bundler consumes
// and signs macOS bundles after a build.
package artifacts
