// Package definition loads declarative question definitions from YAML.
//
// # Overview
//
// Suite tools that ask many questions can ship them as data instead of
// code. A definition file declares the prompt, answer type, whitespace
// mode, default, validation pattern, range constraints, and response
// overrides; Build turns it into a finalized question.Question ready for
// the tool's prompt loop.
//
// # Usage
//
//	def, err := definition.Parse("prompts/port.question.yml")
//	if err != nil {
//	    return err
//	}
//	q, err := def.Build()
//
// A definition file looks like:
//
//	prompt: "Port? "
//	type: integer
//	default: "8080"
//	above: "0"
//	below: "65536"
//	responses:
//	  invalid_type: "Digits only, please."
//
// Validate reports every problem in a file at once, with suggestions,
// rather than stopping at the first.
package definition
