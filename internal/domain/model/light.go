package model

const (
	MinBrightness      = 0
	MaxBrightness      = 254
	BrightnessInterval = 20

	DefaultReferenceLight = "Computer"
)

type LightState struct {
	On         bool
	Brightness int
	Reachable  bool
}

type Light struct {
	ID    string // bridge identifier, numeric for v1 and a UUID for v2
	Name  string
	State *LightState
}

// StateUpdate carries the fields to write; nil fields are left untouched.
type StateUpdate struct {
	On         *bool
	Brightness *int
}

func OnUpdate(on bool) StateUpdate {
	return StateUpdate{On: &on}
}

func BrightnessUpdate(bri int) StateUpdate {
	return StateUpdate{Brightness: &bri}
}

// FindLight returns the first light called name.
func FindLight(lights []*Light, name string) (*Light, bool) {
	for _, l := range lights {
		if l.Name == name {
			return l, true
		}
	}
	return nil, false
}
