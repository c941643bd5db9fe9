// Package definition builds pipelines from textual descriptions.
//
// Operations can be written in a compact form, one operation per string:
//
//	remove_punctuation   (alias: punct)
//	trim_spaces          (alias: trim)
//	lowercase            (alias: lower)
//	ngrams:N             n-grams of N words separated by a single space
//	ngrams:N:SEP         n-grams of N words separated by SEP, SEP is the rest of the string
//
// or listed in an hjson file:
//
//	{
//	  # comments are allowed
//	  operations: [
//	    { kind: "remove_punctuation" }
//	    { kind: "lower" }
//	    {
//	      kind: ngrams
//	      n: 2
//	      separator: "; "
//	    }
//	  ]
//	}
package definition
