// Package review contains the architecture review data model and the engine
// that produces reviews.
//
// A run moves through a fixed sequence of states tracked by [Pipeline]:
// the component model is extracted from the parsed document, issues are
// detected against that model, and a Markdown report is generated from both.
// Each stage is one completion call whose text goes through the normalize
// package. A failure at any stage aborts the run with a *[StageError] and
// nothing is stored.
//
// Component dependency ids and issue component references come straight from
// the model and are never checked against the extracted component set.
package review
