// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Quality selects the trade-off between encoding speed and fidelity for
// lossy coders. The zero value is QualityGood.
type Quality int

const (
	// QualityGood gives good quality without being too slow.
	QualityGood Quality = iota
	// QualityBest gives the best quality; encoding speed does not matter.
	QualityBest
	// QualityAcceptable encodes fast with acceptable quality.
	QualityAcceptable
	// QualityFastest encodes as fast as possible; quality does not matter.
	QualityFastest
)

// Validate returns ErrInvalidQuality for values outside the enumeration.
func (q Quality) Validate() error {
	switch q {
	case QualityGood, QualityBest, QualityAcceptable, QualityFastest:
		return nil
	}

	return fmt.Errorf("%w: %d", ErrInvalidQuality, int(q))
}

func (q Quality) String() string {
	switch q {
	case QualityGood:
		return "good"
	case QualityBest:
		return "best"
	case QualityAcceptable:
		return "acceptable"
	case QualityFastest:
		return "fastest"
	}

	return fmt.Sprintf("Quality(%d)", int(q))
}
