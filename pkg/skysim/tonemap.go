package skysim

import(
	"fmt"
	"image"

	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/tmo"
)

var(
	Tonemappers = []string{"drago03", "durand", "icam06", "linear", "reinhard05"}
)

func ListTonemappers() string {
	return fmt.Sprintf("%v", Tonemappers)
}

// Tonemap runs the named operator over img. An empty name is no
// tonemapping at all; the image's values are already in [0,1].
func Tonemap(img hdr.Image, name string) (image.Image, error) {
	if name == "" {
		return img, nil
	}
	op, err := SetupTonemapper(img, name)
	if err != nil {
		return nil, err
	}
	return op.Perform(), nil
}

// Tweak the tmo parameters for night skies. By default, they stretch the
// dark background until it is grey, and the stars get lost.
func SetupTonemapper(img hdr.Image, name string) (tmo.ToneMappingOperator, error) {
	switch name {
	case "drago03":
		op :=  tmo.NewDefaultDrago03(img)
		op.Bias = 0.95
		return op, nil

	case "durand":
		return tmo.NewDefaultDurand(img), nil

	case "icam06":
		op := tmo.NewDefaultICam06(img)
		op.Contrast    = 0.65
		op.MaxClipping = 0.999
		return op, nil

	case "linear":
		return tmo.NewLinear(img), nil

	case "reinhard05":
		op := tmo.NewDefaultReinhard05(img)
		op.Chromatic  = 0.005
		op.Light      = 0.005    // Keeps the background dark
		return op, nil
	}

	return nil, fmt.Errorf("tonemapper %q not recognized, wanted %s", name, ListTonemappers())
}
