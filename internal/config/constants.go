package config

// DefaultOutputDir is where converted markdown files land unless
// overridden via flag or environment variable.
const DefaultOutputDir = "."
