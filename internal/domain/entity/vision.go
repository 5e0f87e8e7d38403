package entity

// SliceDirection направление разрезания изображения
type SliceDirection int

const (
	SliceHorizontal SliceDirection = iota // верх / низ
	SliceVertical                         // лево / право
	SliceShortest                         // пополам по правилу короткой стороны
	SliceLongest                          // пополам по правилу длинной стороны
)

// SmoothKind вид сглаживающего фильтра
type SmoothKind string

const (
	SmoothBilateral   SmoothKind = "bilateral"
	SmoothBox         SmoothKind = "box"
	SmoothConvolution SmoothKind = "convolution"
	SmoothGaussian    SmoothKind = "gaussian"
	SmoothMedian      SmoothKind = "median"
)

// Smoothing параметры сглаживания
type Smoothing struct {
	Kind       SmoothKind
	KernelSize int     // размер ядра (для bilateral это диаметр)
	SigmaX     float64 // gaussian; для bilateral sigma цвета
	SigmaY     float64 // gaussian; для bilateral sigma пространства
}

// MorphOp морфологическая операция
type MorphOp string

const (
	MorphErode    MorphOp = "erode"
	MorphDilate   MorphOp = "dilate"
	MorphOpen     MorphOp = "open"
	MorphClose    MorphOp = "close"
	MorphGradient MorphOp = "gradient"
	MorphTophat   MorphOp = "tophat"
	MorphBlackhat MorphOp = "blackhat"
)

// KernelShape форма структурного элемента
type KernelShape string

const (
	KernelRect    KernelShape = "rect"
	KernelCross   KernelShape = "cross"
	KernelEllipse KernelShape = "ellipse"
)

// MorphStep один шаг морфологической обработки
type MorphStep struct {
	Op         MorphOp
	KernelSize int
	Shape      KernelShape
	Iterations int
}

// HSV порог в пространстве OpenCV (H 0–180, S и V 0–255)
type HSV struct {
	H, S, V int
}

// Point точка на плоскости
type Point struct {
	X, Y float64
}
