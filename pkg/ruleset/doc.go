// Package ruleset assembles ordered rule pipelines, either from the built-in
// ACN preset or from declarative YAML (or JSON) definitions.
//
// A definition file names each rule kind understood by validator.Build,
// with optional integer parameters and a custom message:
//
//	name: acn
//	successMessage: Valid ACN Number
//	rules:
//	  - rule: minLength
//	    parameters: {minLength: 9}
//	  - rule: maxLength
//	    parameters: {maxLength: 9}
//	  - rule: whitespaceEveryNthCharacter
//	    parameters: {nthCharacter: 3}
//	    message: Group the digits as 3-3-3
//	  - rule: numberOnly
//	  - rule: isValidACNNumber
//
// Rules are built in file order, which is the evaluation order.
package ruleset
