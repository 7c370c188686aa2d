package http

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"taskboard/internal/backend"
	"taskboard/internal/model"
	"taskboard/pkg/log"
)

type handler struct {
	l  log.Logger
	uc backend.UseCase
}

var registerOnce sync.Once

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc backend.UseCase) *handler {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		if err := model.RegisterValidations(v); err != nil {
			panic(err)
		}
	})

	return &handler{
		l:  l,
		uc: uc,
	}
}

// jsonFieldName reports validation failures under their wire names.
func jsonFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}
