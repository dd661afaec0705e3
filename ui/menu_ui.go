package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI is the title screen overlay with the button that starts a run.
type MenuUI struct {
	UI *ebitenui.UI

	OnStart func()

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewMenuUI(onStart func()) *MenuUI {
	ui := &MenuUI{
		OnStart: onStart,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 36}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
}

func (ui *MenuUI) buildUI() {
	// Transparent so the world's menu background shows through.
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.NRGBA{10, 5, 20, 200})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
			widget.RowLayoutOpts.Spacing(16),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("ECLIPSE CONTRACT", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{212, 175, 55, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	subtitleLabel := widget.NewLabel(
		widget.LabelOpts.Text("Bind the dead. Spend your soul wisely.", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 170, 200, 255},
		}),
	)
	contentContainer.AddChild(subtitleLabel)

	startBtn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 40)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{75, 0, 130, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{100, 30, 160, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{55, 0, 100, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
		}),
		widget.ButtonOpts.Text("Sign Contract", &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Disabled: color.RGBA{80, 80, 80, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnStart != nil {
				ui.OnStart()
			}
		}),
	)
	contentContainer.AddChild(startBtn)

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text("or press Enter", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{150, 150, 150, 255},
		}),
	)
	contentContainer.AddChild(hintLabel)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *MenuUI) Update() {
	ui.UI.Update()
}

func (ui *MenuUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
