// Package services implements the driving port interfaces.
// Services contain the core business logic: fuzzy matching, ranking
// and the interactive search session state machine.
//
// Services are pure Go with no external dependencies beyond the logger
// and session identifiers.
package services
