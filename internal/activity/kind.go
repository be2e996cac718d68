// internal/activity/kind.go
package activity

// Kind identifies the producer of a sneak peek or expanded view.
type Kind int

const (
	KindVolume Kind = iota
	KindBrightness
	KindMusic
	KindMic
	KindBattery
	KindDownload
	KindTimer
	KindReminder
	KindRecording
	KindDoNotDisturb
	KindBluetoothAudio
	KindPrivacy
	KindLockScreen
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindVolume:
		return "volume"
	case KindBrightness:
		return "brightness"
	case KindMusic:
		return "music"
	case KindMic:
		return "mic"
	case KindBattery:
		return "battery"
	case KindDownload:
		return "download"
	case KindTimer:
		return "timer"
	case KindReminder:
		return "reminder"
	case KindRecording:
		return "recording"
	case KindDoNotDisturb:
		return "doNotDisturb"
	case KindBluetoothAudio:
		return "bluetoothAudio"
	case KindPrivacy:
		return "privacy"
	case KindLockScreen:
		return "lockScreen"
	default:
		return "unknown"
	}
}

// Interactive reports whether the kind carries something the user acts on.
// Only these survive when the legacy OS indicator stays authoritative.
func (k Kind) Interactive() bool {
	return k == KindMusic || k == KindTimer || k == KindReminder
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, bool) {
	for k := KindVolume; k <= KindLockScreen; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// BrowserVariant disambiguates the source of a download expanded view.
type BrowserVariant int

const (
	BrowserChromium BrowserVariant = iota
	BrowserSafari
)

// String returns the variant name.
func (b BrowserVariant) String() string {
	switch b {
	case BrowserChromium:
		return "chromium"
	case BrowserSafari:
		return "safari"
	default:
		return "unknown"
	}
}
