// Package app provides the main application logic for the BookWise
// authentication flows. It wires the session store, the identity client,
// and the flow controller together, and maps each CLI command onto one
// flow operation.
package app
