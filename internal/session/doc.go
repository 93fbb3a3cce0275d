// Package session allocates the isolated, title-derived output directory
// each pipeline invocation writes into. Path derivation is deterministic
// so repeated runs for the same source converge on the same directory;
// same-title writers serialize on a per-title lock instead.
package session
