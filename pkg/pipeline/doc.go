// Package pipeline provides a pipeline for transforming text.
//
// A pipeline is an ordered list of operations built incrementally with Append. Process applies every operation in
// insertion order to an input string, each operation consuming the previous result:
//
//	out, err := pipeline.New().
//		Append(pipeline.RemovePunctuation()).
//		Append(pipeline.TrimSpaces()).
//		Append(pipeline.Lowercase()).
//		Process("Dog, can ! bark.;")
//	// out == "dog can bark"
//
// The set of operations is closed: RemovePunctuation, TrimSpaces, Lowercase and NGrams. A pipeline is an immutable
// value. Append returns a new pipeline and never modifies the receiver, so a pipeline can be shared between goroutines
// and extended in different directions without synchronisation.
//
// The pipeline stops on the first encountered error and returns it wrapped with the position and the name of the
// failing operation. Run offers the same execution with a context and a list of options observing every operation,
// see the measure and drawer packages. ProcessBatch runs many independent inputs through the same pipeline
// concurrently.
package pipeline
