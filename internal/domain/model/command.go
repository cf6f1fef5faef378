package model

// BrightnessCommand is a brightness adjustment keyword accepted on the command line.
type BrightnessCommand string

const (
	BrightnessSet      BrightnessCommand = "set"
	BrightnessIncrease BrightnessCommand = "increase"
	BrightnessDecrease BrightnessCommand = "decrease"
)

var brightnessCommands = []BrightnessCommand{
	BrightnessSet,
	BrightnessIncrease,
	BrightnessDecrease,
}

// BrightnessCommands returns the vocabulary in declaration order.
func BrightnessCommands() []BrightnessCommand {
	out := make([]BrightnessCommand, len(brightnessCommands))
	copy(out, brightnessCommands)
	return out
}

func (c BrightnessCommand) String() string {
	return string(c)
}

// Is reports whether token is the raw form of c.
func (c BrightnessCommand) Is(token string) bool {
	return string(c) == token
}

func ParseBrightnessCommand(token string) (BrightnessCommand, bool) {
	for _, c := range brightnessCommands {
		if c.Is(token) {
			return c, true
		}
	}
	return "", false
}

func IsBrightnessCommand(token string) bool {
	_, ok := ParseBrightnessCommand(token)
	return ok
}
