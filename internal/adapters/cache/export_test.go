package cache

// Fingerprint exposes fingerprint for testing.
var Fingerprint = fingerprint
