package errors

// DiagnosticBuilder provides a fluent interface for creating compiler errors
type DiagnosticBuilder struct {
	err CompilerError
}

// NewDiagnostic creates a new error builder for a position on a single line of input.
// offset is the 0-based character offset within that line.
func NewDiagnostic(code, message string, offset int) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: Position{Line: 1, Column: offset + 1, Offset: offset},
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *DiagnosticBuilder) WithLength(length int) *DiagnosticBuilder {
	b.err.Length = length
	return b
}

// WithNote adds a context note
func (b *DiagnosticBuilder) WithNote(note string) *DiagnosticBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp sets help text
func (b *DiagnosticBuilder) WithHelp(help string) *DiagnosticBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the constructed error
func (b *DiagnosticBuilder) Build() CompilerError {
	return b.err
}
