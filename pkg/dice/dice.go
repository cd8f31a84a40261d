// Package dice backs the id-generation affordance in the UI: a die icon that
// shows a new face every time a key is generated.
package dice

import "math/rand"

// Faces are the icon names in display order.
var Faces = []string{
	"dice-one",
	"dice-two",
	"dice-three",
	"dice-four",
	"dice-five",
	"dice-six",
}

// NextFace picks a random face from faces that differs from current whenever
// more than one face exists.
func NextFace(current string, faces []string) string {
	if len(faces) == 0 {
		return current
	}
	if len(faces) == 1 {
		return faces[0]
	}
	for {
		face := faces[rand.Intn(len(faces))]
		if face != current {
			return face
		}
	}
}
