// Package inference talks to the local model host that loads sequence
// correction models and runs text generation on their behalf.
package inference
