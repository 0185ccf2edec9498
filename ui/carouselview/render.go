package carouselview

import (
	"image/color"
	"math"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"holomat/internal/carousel"
	"holomat/internal/config"
	"holomat/pkg/colorutil"
)

// Layout metrics in fyne units.
const (
	iconSize    = 96
	glyphSize   = 36
	centerYFrac = 0.45
	nameGap     = 18

	dotRadius  = 4
	dotSpacing = 18
	dotsMargin = 40 // from the bottom edge to the dot row
	dotHitSlop = 6

	trayHeight = 110
	traySlot   = 84
	trayArrow  = 48
)

// center is the carousel origin inside a widget of the given size.
func center(size fyne.Size) fyne.Position {
	return fyne.NewPos(size.Width/2, size.Height*centerYFrac)
}

// dotCenter returns the center of indicator dot i of n.
func dotCenter(i, n int, size fyne.Size) fyne.Position {
	width := float32(n-1) * dotSpacing
	x := size.Width/2 - width/2 + float32(i)*dotSpacing
	return fyne.NewPos(x, size.Height-dotsMargin)
}

// dotAt hit-tests the indicator row.
func dotAt(pos fyne.Position, n int, size fyne.Size) (int, bool) {
	reach := float32(dotRadius + dotHitSlop)
	for i := 0; i < n; i++ {
		c := dotCenter(i, n, size)
		if abs32(pos.X-c.X) <= reach && abs32(pos.Y-c.Y) <= reach {
			return i, true
		}
	}
	return -1, false
}

func trayTop(size fyne.Size) float32 {
	return size.Height - trayHeight
}

// traySlotCenter returns the center of slot i of count.
func traySlotCenter(i, count int, size fyne.Size) fyne.Position {
	start := size.Width/2 - float32(count)*traySlot/2
	return fyne.NewPos(start+(float32(i)+0.5)*traySlot, trayTop(size)+trayHeight/2)
}

// traySlotAt hit-tests the tray slots.
func traySlotAt(pos fyne.Position, count int, size fyne.Size) (int, bool) {
	if pos.Y < trayTop(size) || pos.Y > size.Height {
		return -1, false
	}
	for i := 0; i < count; i++ {
		c := traySlotCenter(i, count, size)
		if abs32(pos.X-c.X) <= traySlot/2 {
			return i, true
		}
	}
	return -1, false
}

// trayArrowAt returns -1 for the left arrow, 1 for the right arrow and 0
// elsewhere. Arrows exist only while the tray can scroll.
func trayArrowAt(pos fyne.Position, size fyne.Size, scrollable bool) int {
	if !scrollable || pos.Y < trayTop(size) || pos.Y > size.Height {
		return 0
	}
	switch {
	case pos.X <= trayArrow:
		return -1
	case pos.X >= size.Width-trayArrow:
		return 1
	}
	return 0
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// blurFade approximates depth blur, which fyne cannot draw, by fading.
func blurFade(blur float64) float64 {
	return 1 - math.Min(blur, 1)*0.35
}

// glyph is the text shown inside an icon: a short IconRef such as an emoji,
// otherwise the first letter of the name.
func glyph(item carousel.Item) string {
	if item.IconRef != "" && utf8.RuneCountInString(item.IconRef) <= 2 {
		return item.IconRef
	}
	r, _ := utf8.DecodeRuneInString(item.DisplayName)
	if r == utf8.RuneError {
		return "?"
	}
	return strings.ToUpper(string(r))
}

func iconImagePath(ref string) bool {
	switch strings.ToLower(filepath.Ext(ref)) {
	case ".png", ".jpg", ".jpeg", ".svg":
		return true
	}
	return false
}

// frame is a consistent snapshot of the view taken under its lock.
type frame struct {
	items      []carousel.Item
	transforms []carousel.ItemTransform
	active     int
	layout     config.Layout
	slots      []carousel.TraySlot
	scrollable bool
	dragging   int
	dragPos    fyne.Position
	accent     color.RGBA
}

func (v *CarouselView) snapshot() frame {
	v.mu.Lock()
	defer v.mu.Unlock()
	f := frame{
		items:      v.engine.Items(),
		transforms: v.engine.Transforms(),
		active:     v.engine.ActiveIndex(),
		layout:     v.layout,
		slots:      v.tray.Slots(),
		scrollable: v.tray.Scrollable(),
		dragging:   -1,
		dragPos:    v.lastPos,
		accent:     v.accent,
	}
	if i, ok := v.tray.Dragging(); ok {
		f.dragging = i
	}
	return f
}

type itemVisual struct {
	id    string
	ring  *canvas.Circle
	image *canvas.Image
	glyph *canvas.Text
}

func newItemVisual(item carousel.Item) *itemVisual {
	iv := &itemVisual{
		id:    item.ID,
		ring:  canvas.NewCircle(color.Transparent),
		glyph: canvas.NewText(glyph(item), colorutil.White),
	}
	iv.glyph.Alignment = fyne.TextAlignCenter
	iv.glyph.TextStyle = fyne.TextStyle{Bold: true}
	if iconImagePath(item.IconRef) {
		iv.image = canvas.NewImageFromFile(item.IconRef)
		iv.image.FillMode = canvas.ImageFillContain
	}
	return iv
}

func (iv *itemVisual) objects() []fyne.CanvasObject {
	if iv.image != nil {
		return []fyne.CanvasObject{iv.ring, iv.image}
	}
	return []fyne.CanvasObject{iv.ring, iv.glyph}
}

// place draws the icon centered on c with diameter d.
func (iv *itemVisual) place(c fyne.Position, d float32, accent color.RGBA, alpha float64, focused bool) {
	iv.ring.FillColor = colorutil.WithAlpha(accent, 0.18*alpha)
	iv.ring.StrokeColor = colorutil.WithAlpha(accent, alpha)
	iv.ring.StrokeWidth = 2
	if focused {
		iv.ring.StrokeWidth = 3
	}
	iv.ring.Resize(fyne.NewSize(d, d))
	iv.ring.Move(fyne.NewPos(c.X-d/2, c.Y-d/2))

	if iv.image != nil {
		inner := d * 0.6
		iv.image.Translucency = 1 - alpha
		iv.image.Resize(fyne.NewSize(inner, inner))
		iv.image.Move(fyne.NewPos(c.X-inner/2, c.Y-inner/2))
	} else {
		iv.glyph.TextSize = glyphSize * d / iconSize
		iv.glyph.Color = colorutil.WithAlpha(colorutil.White, alpha)
		h := iv.glyph.MinSize().Height
		iv.glyph.Resize(fyne.NewSize(d, h))
		iv.glyph.Move(fyne.NewPos(c.X-d/2, c.Y-h/2))
	}
	for _, o := range iv.objects() {
		o.Show()
		o.Refresh()
	}
}

func (iv *itemVisual) hide() {
	for _, o := range iv.objects() {
		o.Hide()
	}
}

type carouselRenderer struct {
	view *CarouselView

	visuals   []*itemVisual
	name      *canvas.Text
	dots      []*canvas.Circle
	trayBar   *canvas.Rectangle
	trayLeft  *canvas.Text
	trayRight *canvas.Text

	objects []fyne.CanvasObject
}

func newRenderer(v *CarouselView) *carouselRenderer {
	r := &carouselRenderer{
		view:      v,
		name:      canvas.NewText("", colorutil.White),
		trayBar:   canvas.NewRectangle(color.Transparent),
		trayLeft:  canvas.NewText("<", colorutil.White),
		trayRight: canvas.NewText(">", colorutil.White),
	}
	r.name.Alignment = fyne.TextAlignCenter
	r.name.TextStyle = fyne.TextStyle{Bold: true}
	r.trayLeft.TextSize = 28
	r.trayRight.TextSize = 28
	r.Refresh()
	return r
}

func (r *carouselRenderer) Layout(fyne.Size) {
	r.Refresh()
}

func (r *carouselRenderer) MinSize() fyne.Size {
	return fyne.NewSize(iconSize*3, iconSize*2+dotsMargin)
}

func (r *carouselRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *carouselRenderer) Destroy() {}

// Refresh repositions every object from a fresh snapshot.
func (r *carouselRenderer) Refresh() {
	f := r.view.snapshot()
	size := r.view.Size()
	r.sync(f.items)

	var order []int
	if f.layout == config.LayoutTray {
		order = r.layoutTray(f, size)
	} else {
		order = r.layoutCarousel(f, size)
	}

	objects := []fyne.CanvasObject{r.trayBar, r.trayLeft, r.trayRight}
	for _, i := range order {
		objects = append(objects, r.visuals[i].objects()...)
	}
	objects = append(objects, r.name)
	for _, d := range r.dots {
		objects = append(objects, d)
	}
	r.objects = objects
}

// sync rebuilds the per-item visuals when the item list changed.
func (r *carouselRenderer) sync(items []carousel.Item) {
	same := len(items) == len(r.visuals)
	for i := 0; same && i < len(items); i++ {
		same = items[i].ID == r.visuals[i].id
	}
	if same {
		return
	}
	r.visuals = make([]*itemVisual, len(items))
	for i, item := range items {
		r.visuals[i] = newItemVisual(item)
	}
	r.dots = make([]*canvas.Circle, len(items))
	for i := range r.dots {
		r.dots[i] = canvas.NewCircle(color.Transparent)
	}
}

// layoutCarousel places items on the circle and returns them back to front.
func (r *carouselRenderer) layoutCarousel(f frame, size fyne.Size) []int {
	r.trayBar.Hide()
	r.trayLeft.Hide()
	r.trayRight.Hide()

	origin := center(size)
	order := make([]int, len(f.transforms))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return f.transforms[a].ZIndex - f.transforms[b].ZIndex
	})

	for _, t := range f.transforms {
		c := fyne.NewPos(origin.X+float32(t.X), origin.Y+float32(t.Y))
		alpha := t.Opacity * blurFade(t.Blur)
		r.visuals[t.Index].place(c, float32(iconSize*t.Scale), f.accent, alpha, t.Focused)
	}

	r.name.Hide()
	if f.active < len(f.items) {
		t := f.transforms[f.active]
		r.name.Text = f.items[f.active].DisplayName
		r.name.Color = colorutil.WithAlpha(colorutil.White, 0.9)
		h := r.name.MinSize().Height
		y := origin.Y + float32(iconSize*t.Scale)/2 + nameGap
		r.name.Resize(fyne.NewSize(size.Width, h))
		r.name.Move(fyne.NewPos(0, y))
		r.name.Show()
		r.name.Refresh()
	}

	for i, d := range r.dots {
		c := dotCenter(i, len(r.dots), size)
		d.FillColor = colorutil.WithAlpha(f.accent, 0.35)
		if i == f.active {
			d.FillColor = f.accent
		}
		d.Resize(fyne.NewSize(dotRadius*2, dotRadius*2))
		d.Move(fyne.NewPos(c.X-dotRadius, c.Y-dotRadius))
		d.Show()
		d.Refresh()
	}
	return order
}

// layoutTray places the visible slots along the bottom bar. The icon being
// dragged follows the pointer and is drawn last.
func (r *carouselRenderer) layoutTray(f frame, size fyne.Size) []int {
	for _, iv := range r.visuals {
		iv.hide()
	}
	for _, d := range r.dots {
		d.Hide()
	}
	r.name.Hide()

	top := trayTop(size)
	r.trayBar.FillColor = colorutil.WithAlpha(f.accent, 0.12)
	r.trayBar.StrokeColor = colorutil.WithAlpha(f.accent, 0.5)
	r.trayBar.StrokeWidth = 1
	r.trayBar.Resize(fyne.NewSize(size.Width, trayHeight))
	r.trayBar.Move(fyne.NewPos(0, top))
	r.trayBar.Show()
	r.trayBar.Refresh()

	for _, arrow := range []*canvas.Text{r.trayLeft, r.trayRight} {
		if !f.scrollable {
			arrow.Hide()
			continue
		}
		arrow.Color = f.accent
		h := arrow.MinSize().Height
		x := float32(trayArrow / 3)
		if arrow == r.trayRight {
			x = size.Width - trayArrow*2/3
		}
		arrow.Move(fyne.NewPos(x, top+trayHeight/2-h/2))
		arrow.Show()
		arrow.Refresh()
	}

	order := make([]int, 0, len(f.slots)+1)
	for i, s := range f.slots {
		if s.Index == f.dragging {
			continue
		}
		c := traySlotCenter(i, len(f.slots), size)
		r.visuals[s.Index].place(c, float32(iconSize*0.7*s.Scale), f.accent, s.Opacity, false)
		order = append(order, s.Index)
	}
	if f.dragging >= 0 && f.dragging < len(r.visuals) {
		r.visuals[f.dragging].place(f.dragPos, iconSize*0.8, f.accent, 1, true)
		order = append(order, f.dragging)
	}
	return order
}
