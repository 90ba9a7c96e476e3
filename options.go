package miragic

import "fmt"

// Методы апскейла, поддерживаемые сервером.
const (
	UpscaleLanczos = "lanczos"
	UpscaleBicubic = "bicubic"
	UpscaleNearest = "nearest"
)

// RemovalOptions необязательные параметры удаления фона.
// Нулевое значение (или nil) означает серверные значения по умолчанию.
type RemovalOptions struct {
	Threshold      *int // Порог сегментации, 0-255
	EdgeRefinement bool // Уточнение краёв
	HairDetection  bool // Отдельная обработка волос

	// Extra пробрасывается в поле parameters как есть — для серверных опций,
	// ещё не известных клиенту. Ключи из Extra не перекрывают типизированные поля.
	Extra map[string]any
}

func (o *RemovalOptions) validate() error {
	if o == nil {
		return nil
	}
	if o.Threshold != nil && (*o.Threshold < 0 || *o.Threshold > 255) {
		return &ValidationError{Field: "threshold", Reason: fmt.Sprintf("must be within [0, 255], got %d", *o.Threshold)}
	}
	return nil
}

func (o *RemovalOptions) params() map[string]any {
	if o == nil {
		return nil
	}
	p := cloneExtra(o.Extra)
	if o.Threshold != nil {
		p["threshold"] = *o.Threshold
	}
	if o.EdgeRefinement {
		p["edge_refinement"] = true
	}
	if o.HairDetection {
		p["hair_detection"] = true
	}
	if len(p) == 0 {
		return nil
	}
	return p
}

// BlurOptions необязательные параметры размытия фона.
// Сама сила размытия — обязательный аргумент операции, не опция.
type BlurOptions struct {
	CenterFocus bool // Держать фокус в центре кадра
	MaxRadius   *int // Максимальный радиус размытия, в пикселях

	Extra map[string]any
}

func (o *BlurOptions) validate() error {
	if o == nil {
		return nil
	}
	if o.MaxRadius != nil && *o.MaxRadius <= 0 {
		return &ValidationError{Field: "max_radius", Reason: fmt.Sprintf("must be positive, got %d", *o.MaxRadius)}
	}
	return nil
}

func (o *BlurOptions) params() map[string]any {
	if o == nil {
		return nil
	}
	p := cloneExtra(o.Extra)
	if o.CenterFocus {
		p["center_focus"] = true
	}
	if o.MaxRadius != nil {
		p["max_radius"] = *o.MaxRadius
	}
	if len(p) == 0 {
		return nil
	}
	return p
}

// UpscaleOptions необязательные параметры апскейла.
// Сам коэффициент масштабирования — обязательный аргумент операции.
type UpscaleOptions struct {
	Method         string // lanczos|bicubic|nearest, пусто — серверный дефолт
	Sharpen        bool   // Повышение резкости после апскейла
	NoiseReduction bool   // Подавление шума

	Extra map[string]any
}

func (o *UpscaleOptions) validate() error {
	if o == nil {
		return nil
	}
	switch o.Method {
	case "", UpscaleLanczos, UpscaleBicubic, UpscaleNearest:
	default:
		return &ValidationError{Field: "method", Reason: fmt.Sprintf("must be one of lanczos|bicubic|nearest, got %q", o.Method)}
	}
	return nil
}

func (o *UpscaleOptions) params() map[string]any {
	if o == nil {
		return nil
	}
	p := cloneExtra(o.Extra)
	if o.Method != "" {
		p["method"] = o.Method
	}
	if o.Sharpen {
		p["sharpen"] = true
	}
	if o.NoiseReduction {
		p["noise_reduction"] = true
	}
	if len(p) == 0 {
		return nil
	}
	return p
}

func cloneExtra(extra map[string]any) map[string]any {
	p := make(map[string]any, len(extra)+3)
	for k, v := range extra {
		p[k] = v
	}
	return p
}
