package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	cfg "github.com/automoto/mazeescape/config"
	"github.com/automoto/mazeescape/shared/leveldata"
	"github.com/automoto/mazeescape/shared/progression"
)

// LevelSelectUI is the level selection and skin shop screen. Locked levels
// are shown but cannot be pressed.
type LevelSelectUI struct {
	UI *ebitenui.UI

	OnPlay func(level int)
	OnBuy  func(skin string)
	OnSkin func(skin string)
	OnQuit func()

	table    *leveldata.Table
	progress *progression.State
	catalog  progression.Catalog

	statusLabel *widget.Label
	status      string

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewLevelSelectUI(table *leveldata.Table, progress *progression.State, catalog progression.Catalog) *LevelSelectUI {
	ui := &LevelSelectUI{
		table:    table,
		progress: progress,
		catalog:  catalog,
	}
	ui.loadFonts()
	ui.UI = &ebitenui.UI{}
	ui.Refresh()
	return ui
}

func (ui *LevelSelectUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatal("failed to load UI font", "err", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 32}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 18}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 14}
}

// Refresh rebuilds the widgets from the current progression state.
func (ui *LevelSelectUI) Refresh() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.LevelSelect.Padding)),
			widget.RowLayoutOpts.Spacing(14),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.LevelSelect.TitleText, &ui.titleFace, &widget.LabelColor{
			Idle: cfg.LevelSelect.TextColor,
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("Coins: %d", ui.progress.Coins), &ui.normalFace, &widget.LabelColor{
			Idle: cfg.Yellow,
		}),
	))

	contentContainer.AddChild(ui.buildLevelGrid())
	contentContainer.AddChild(ui.buildSkinRow())

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text(ui.status, &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	contentContainer.AddChild(ui.statusLabel)
	contentContainer.AddChild(ui.buildButtons())

	rootContainer.AddChild(contentContainer)
	ui.UI.Container = rootContainer
}

func (ui *LevelSelectUI) buildLevelGrid() *widget.Container {
	grid := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	var row *widget.Container
	for i := range ui.table.Levels {
		if i%cfg.LevelSelect.Columns == 0 {
			row = widget.NewContainer(
				widget.ContainerOpts.Layout(widget.NewRowLayout(
					widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
					widget.RowLayoutOpts.Spacing(10),
				)),
			)
			grid.AddChild(row)
		}
		row.AddChild(ui.levelButton(i + 1))
	}
	return grid
}

func (ui *LevelSelectUI) levelButton(n int) *widget.Button {
	def := ui.table.Levels[n-1]
	unlocked := ui.progress.IsUnlocked(n)

	label := fmt.Sprintf("%d. %s", n, def.Name)
	if !unlocked {
		label = fmt.Sprintf("%d. %s", n, cfg.LevelSelect.LockedText)
	}

	btn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(cfg.LevelSelect.ButtonWidth, cfg.LevelSelect.ButtonHeight)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(cfg.LevelSelect.ButtonIdle),
			Hover:    image.NewNineSliceColor(cfg.LevelSelect.ButtonHover),
			Pressed:  image.NewNineSliceColor(cfg.LevelSelect.ButtonPressed),
			Disabled: image.NewNineSliceColor(cfg.LevelSelect.ButtonLocked),
		}),
		widget.ButtonOpts.Text(label, &ui.smallFace, &widget.ButtonTextColor{
			Idle:     cfg.LevelSelect.TextColor,
			Disabled: color.RGBA{160, 160, 160, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnPlay != nil {
				ui.OnPlay(n)
			}
		}),
	)
	if !unlocked {
		btn.GetWidget().Disabled = true
	}
	return btn
}

func (ui *LevelSelectUI) buildSkinRow() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	container.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Skin:", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	))

	for _, skin := range ui.catalog {
		skin := skin
		owned := ui.progress.Owns(skin.ID)

		label := skin.Name
		tint := color.RGBA{60, 60, 80, 255}
		switch {
		case ui.progress.Skin == skin.ID:
			label = "> " + skin.Name
			tint = color.RGBA{40, 100, 40, 255}
		case !owned:
			label = fmt.Sprintf("%s (%d)", skin.Name, skin.Price)
		}

		btn := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(110, 28)),
			widget.ButtonOpts.Image(&widget.ButtonImage{
				Idle:    image.NewNineSliceColor(tint),
				Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 120, 255}),
				Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
			}),
			widget.ButtonOpts.Text(label, &ui.smallFace, &widget.ButtonTextColor{
				Idle: color.RGBA{255, 255, 255, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if owned {
					if ui.OnSkin != nil {
						ui.OnSkin(skin.ID)
					}
					return
				}
				if ui.OnBuy != nil {
					ui.OnBuy(skin.ID)
				}
			}),
		)
		container.AddChild(btn)
	}
	return container
}

func (ui *LevelSelectUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text("Quit", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnQuit != nil {
				ui.OnQuit()
			}
		}),
	)
	container.AddChild(quitButton)

	return container
}

// SetStatus shows a one-line message under the skin row.
func (ui *LevelSelectUI) SetStatus(msg string) {
	ui.status = msg
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *LevelSelectUI) Update() {
	ui.UI.Update()
}

func (ui *LevelSelectUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
