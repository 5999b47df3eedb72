// Package templating renders substitution markers of the form
// "{{ name }}" using explicitly supplied variables. Rendering is
// strict: a marker whose variable was not supplied fails the whole
// render with ErrUndefinedVariable instead of expanding to an empty
// string. It uses valyala/fasttemplate with configurable delimiters
// (default "{{" and "}}").
package templating
