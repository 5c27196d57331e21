package ui

import (
	"fmt"

	"github.com/automoto/spiritfire/locale"
	"github.com/automoto/spiritfire/settings"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
)

// SettingsUI edits the player's settings. Every change is handed to
// OnChange straight away so it can be applied and stored.
type SettingsUI struct {
	UI       *ebitenui.UI
	Settings settings.Settings

	// Callbacks
	OnChange func(settings.Settings)
	OnClose  func()

	// Widget references for relabeling after a change
	title     *widget.Label
	names     []*widget.Label
	nameKeys  []string
	values    []*widget.Label
	valueFunc []func(settings.Settings) string
	back      *widget.Button

	faces faces
}

// NewSettingsUI creates the settings screen showing s
func NewSettingsUI(s settings.Settings, onChange func(settings.Settings), onClose func()) *SettingsUI {
	sui := &SettingsUI{
		Settings: s.Normalize(),
		OnChange: onChange,
		OnClose:  onClose,
		faces:    loadFaces(),
	}
	sui.buildUI()
	return sui
}

func (sui *SettingsUI) buildUI() {
	root, content := newScreen()

	sui.title = newLabel(locale.Get("SETTINGS_TITLE"), &sui.faces.title, titleColor)
	content.AddChild(sui.title)

	content.AddChild(sui.row("SETTINGS_LANGUAGE",
		func(s settings.Settings) string { return s.Language },
		sui.stepButton(">", func(s *settings.Settings) { s.Language = settings.NextLanguage(s.Language) }),
	))
	content.AddChild(sui.row("SETTINGS_MUSIC",
		func(s settings.Settings) string { return fmt.Sprintf("%d%%", s.MusicVolume) },
		sui.stepButton("-", func(s *settings.Settings) { s.MusicVolume = settings.StepVolume(s.MusicVolume, -1) }),
		sui.stepButton("+", func(s *settings.Settings) { s.MusicVolume = settings.StepVolume(s.MusicVolume, 1) }),
	))
	content.AddChild(sui.row("SETTINGS_SOUND",
		func(s settings.Settings) string { return fmt.Sprintf("%d%%", s.SoundVolume) },
		sui.stepButton("-", func(s *settings.Settings) { s.SoundVolume = settings.StepVolume(s.SoundVolume, -1) }),
		sui.stepButton("+", func(s *settings.Settings) { s.SoundVolume = settings.StepVolume(s.SoundVolume, 1) }),
	))
	content.AddChild(sui.row("SETTINGS_SCALE",
		func(s settings.Settings) string { return fmt.Sprintf("x%d", s.PixelScale) },
		sui.stepButton(">", func(s *settings.Settings) { s.PixelScale = settings.CyclePixelScale(s.PixelScale) }),
	))
	content.AddChild(sui.row("SETTINGS_SHADER",
		func(s settings.Settings) string { return onOff(s.Shader) },
		sui.stepButton(">", func(s *settings.Settings) { s.Shader = !s.Shader }),
	))
	content.AddChild(sui.row("SETTINGS_FULLSCREEN",
		func(s settings.Settings) string { return onOff(s.Fullscreen) },
		sui.stepButton(">", func(s *settings.Settings) { s.Fullscreen = !s.Fullscreen }),
	))

	sui.back = newButton(locale.Get("BACK"), &sui.faces.normal, 100, 26, sui.Close)
	content.AddChild(sui.back)

	sui.UI = &ebitenui.UI{
		Container: root,
	}
}

func (sui *SettingsUI) row(nameKey string, value func(settings.Settings) string, buttons ...*widget.Button) *widget.Container {
	row := newRow(8)

	name := newLabel(locale.Get(nameKey), &sui.faces.normal, textColor)
	sui.names = append(sui.names, name)
	sui.nameKeys = append(sui.nameKeys, nameKey)
	row.AddChild(name)

	for _, b := range buttons {
		row.AddChild(b)
	}

	valueLabel := newLabel(value(sui.Settings), &sui.faces.normal, valueColor)
	sui.values = append(sui.values, valueLabel)
	sui.valueFunc = append(sui.valueFunc, value)
	row.AddChild(valueLabel)
	return row
}

func (sui *SettingsUI) stepButton(label string, change func(*settings.Settings)) *widget.Button {
	return newButton(label, &sui.faces.small, 24, 20, func() {
		change(&sui.Settings)
		sui.Settings = sui.Settings.Normalize()
		if sui.OnChange != nil {
			sui.OnChange(sui.Settings)
		}
		sui.refresh()
	})
}

// refresh relabels every widget, picking up a language switch as well.
func (sui *SettingsUI) refresh() {
	sui.title.Label = locale.Get("SETTINGS_TITLE")
	for i, name := range sui.names {
		name.Label = locale.Get(sui.nameKeys[i])
	}
	for i, value := range sui.values {
		value.Label = sui.valueFunc[i](sui.Settings)
	}
	sui.back.Text().Label = locale.Get("BACK")
}

// Close leaves the settings screen.
func (sui *SettingsUI) Close() {
	if sui.OnClose != nil {
		sui.OnClose()
	}
}

// Update calls the UI's Update method
func (sui *SettingsUI) Update() {
	sui.UI.Update()
}

func onOff(v bool) string {
	if v {
		return locale.Get("ON")
	}
	return locale.Get("OFF")
}
