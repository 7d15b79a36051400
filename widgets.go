package derma

// RegisterStandardWidgets registers DFrame, DPanel, DButton and DLabel with
// reg. A nil skin registers them without images, which is enough for
// headless use and tests.
func RegisterStandardWidgets(reg *Registry, skin *Skin) error {
	if skin == nil {
		skin = &Skin{}
	}
	frameSkin, panelSkin, buttonSkin := skinOrNil(&skin.Frame), skinOrNil(&skin.Panel), skinOrNil(&skin.Button)

	entries := []struct {
		name  string
		ctor  Constructor
		thumb *FrameSkin
	}{
		{"DFrame", func(x, y float64) Widget { return NewFrame(frameSkin, x, y) }, &skin.Frame},
		{"DPanel", func(x, y float64) Widget { return NewBasicPanel(panelSkin, x, y) }, &skin.Panel},
		{"DButton", func(x, y float64) Widget { return NewButton(buttonSkin, x, y) }, &skin.Button},
		{"DLabel", func(x, y float64) Widget { return NewLabel(x, y) }, &skin.Label},
	}
	for _, e := range entries {
		if err := reg.Register(e.name, e.ctor, e.thumb.Thumbnail); err != nil {
			return err
		}
	}
	return nil
}

// skinOrNil returns nil for a skin without images so widgets fall back to
// plain fills.
func skinOrNil(fs *FrameSkin) *FrameSkin {
	if fs.Top == nil && fs.TopLeft == nil {
		return nil
	}
	return fs
}
