// Package event implements the minimal in-process observer registry a
// router publishes its lifecycle notifications through.
//
// Three kinds of event exist: Before fires ahead of every chain
// execution, After fires once the chain produced a response, and Error
// fires when a dispatch fails. Listeners receive immutable snapshots;
// nothing a listener does can alter routing.
package event
