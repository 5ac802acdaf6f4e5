package generator

// Package generator drives the generator form: it tracks the selected
// category, the raw input and the chosen style, recomputes the payload on
// every edit through the classifier, and records confirmed codes in the
// history. It holds no widgets so the flow can be tested without a window.
