package main

import (
	"regexp"
	"strings"
)

// NameTransform derives a property name from a file's leaf segment.
type NameTransform func(name string) string

var (
	camelCaseSeparator = regexp.MustCompile(`[-_.]\w`)
	snakeCaseBoundary  = regexp.MustCompile(`[-.A-Z]`)
)

// ToCamelCase drops `-`, `_` and `.` and upper-cases the word char after them:
// `my-file.name` becomes `myFileName`.
func ToCamelCase(name string) string {
	return camelCaseSeparator.ReplaceAllStringFunc(name, func(match string) string {
		return strings.ToUpper(match[1:])
	})
}

// ToSnakeCase turns `-` and `.` into `_` and every upper-case letter into `_`
// plus its lower-case form: `MyFile-x` becomes `_my_file_x`.
func ToSnakeCase(name string) string {
	return snakeCaseBoundary.ReplaceAllStringFunc(name, func(match string) string {
		if match == "." || match == "-" {
			return "_"
		}
		return "_" + strings.ToLower(match)
	})
}

func nameTransformFor(snakeCase bool) NameTransform {
	if snakeCase {
		return ToSnakeCase
	}
	return ToCamelCase
}
