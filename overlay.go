package main

import (
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/starseeker/common"
	"github.com/milk9111/starseeker/world"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor = color.NRGBA{A: 200}
	boxColor   = color.NRGBA{R: 0x10, G: 0x10, B: 0x28, A: 0xff}
	buttonIdle = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	textColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// overlays are the widget trees drawn over the world. The map stays a
// plain shape drawing in draw.go.
type overlays struct {
	pause  *ebitenui.UI
	ending *ebitenui.UI
	dialog textBox
	hint   textBox
}

type textBox struct {
	ui   *ebitenui.UI
	text *widget.Text
}

func (b textBox) show(lines []string) *ebitenui.UI {
	b.text.Label = strings.Join(lines, "\n")
	return b.ui
}

func newOverlays(resume func()) *overlays {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

	resumeBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    imageui.NewNineSliceColor(buttonIdle),
			Pressed: imageui.NewNineSliceColor(buttonIdle),
		}),
		widget.ButtonOpts.Text("Resume", &face, &widget.ButtonTextColor{Idle: textColor}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			resume()
		}),
	)

	return &overlays{
		pause:  centeredPanel(&face, "Paused", resumeBtn),
		ending: centeredPanel(&face, "The End"),
		dialog: newTextBox(&face, widget.AnchorLayoutPositionEnd),
		hint:   newTextBox(&face, widget.AnchorLayoutPositionStart),
	}
}

// centeredPanel is a titled panel in the middle of the screen.
func centeredPanel(face *ebtext.Face, title string, children ...widget.PreferredSizeLocateableWidget) *ebitenui.UI {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 8, Right: 8}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.ScreenWidth/2, common.ScreenHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, face, textColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	))
	for _, c := range children {
		panel.AddChild(c)
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

// newTextBox is a full width box pinned to the top or bottom of the screen.
func newTextBox(face *ebtext.Face, vertical widget.AnchorLayoutPosition) textBox {
	text := widget.NewText(widget.TextOpts.Text("", face, textColor))

	box := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(boxColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 3, Bottom: 3, Left: 4, Right: 4}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   vertical,
				StretchHorizontal:  true,
			}),
		),
	)
	box.AddChild(text)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(box)
	return textBox{ui: &ebitenui.UI{Container: root}, text: text}
}

// active lists the trees to update and draw this frame, back to front.
func (o *overlays) active(w *world.World, hint []string) []*ebitenui.UI {
	var out []*ebitenui.UI
	switch {
	case w.Map.Active():
		// drawMap
	case w.Paused:
		out = append(out, o.pause)
	case w.Ended:
		out = append(out, o.ending)
	}

	if w.Dialog.Active() {
		out = append(out, o.dialog.show(w.Dialog.Lines))
	} else if len(hint) > 0 && !w.Map.Active() {
		out = append(out, o.hint.show(hint))
	}
	return out
}
