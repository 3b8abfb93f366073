package domain

// StageInput is one invocation of the build stage.
type StageInput struct {
	// Root is the stylesheet handed over by the upstream pipeline.
	Root *Stylesheet
	// From is the declared path of the stylesheet. Empty for piped input.
	From string
	// Messages are the dependency messages accumulated by upstream parsing.
	Messages []Message
}

// StageResult is the outcome of one invocation of the build stage.
type StageResult struct {
	// Root is the replacement stylesheet. It is the input root when Skipped is set.
	Root *Stylesheet
	// Messages are the upstream messages followed by the edges emitted by the stage.
	Messages []Message
	// Decision is the rebuild strategy that was applied.
	Decision RebuildDecision
	// Skipped reports that the stylesheet has no directives and was left untouched.
	Skipped bool
	// Candidates is the number of candidate tokens handed to the compiler.
	Candidates int
}
