// Package config loads typed configuration structs from the environment with viper.
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/a-peyrard/adptarray/fn"
	"github.com/a-peyrard/adptarray/option"
	"github.com/spf13/viper"
)

type (
	Options struct {
		prefix string
	}

	// WithDefault is implemented by config structs filling their own unset fields.
	WithDefault interface {
		ApplyDefault()
	}
)

// WithEnvPrefix sets the prefix of every environment variable read.
func WithEnvPrefix(prefix string) option.Option[Options] {
	return func(opts *Options) {
		opts.prefix = prefix
	}
}

// Load builds a T from environment variables. A field Foo.BarBaz is read from
// PREFIX_FOO_BAR_BAZ, nil nested struct pointers are allocated, then ApplyDefault is
// called on every struct implementing WithDefault.
func Load[T any](opts ...option.Option[Options]) (*T, error) {
	options := option.Build(&Options{}, opts...)

	v := viper.New()
	v.SetEnvPrefix(options.prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var vT T
	bindEnvs(v, options.prefix, reflect.TypeOf(vT))

	if err := v.Unmarshal(&vT); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}

	walkStruct(
		reflect.ValueOf(&vT),
		fn.AllTriConsumer(
			createNilStructs,
			callApplyDefault,
		),
	)

	return &vT, nil
}

func bindEnvs(v *viper.Viper, envPrefix string, typ reflect.Type, parts ...string) {
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		tag, ok := field.Tag.Lookup("mapstructure")
		if !ok {
			tag = field.Name
		}

		fieldType := field.Type
		if fieldType.Kind() == reflect.Pointer {
			fieldType = fieldType.Elem()
		}
		if fieldType.Kind() == reflect.Struct {
			bindEnvs(v, envPrefix, fieldType, append(parts, tag)...)
			continue
		}

		key := strings.Join(append(parts, tag), ".")
		envParts := make([]string, 0, len(parts)+1)
		for _, part := range append(parts, tag) {
			envParts = append(envParts, screamingSnake(part))
		}
		_ = v.BindEnv(key, withEnvPrefix(envPrefix, strings.Join(envParts, "_")))
	}
}

func withEnvPrefix(envPrefix string, in string) string {
	if envPrefix != "" {
		return strings.ToUpper(envPrefix + "_" + in)
	}
	return strings.ToUpper(in)
}

// screamingSnake turns CustomerId into CUSTOMER_ID and max-slots into MAX_SLOTS.
func screamingSnake(in string) string {
	in = strings.TrimSpace(in)

	sb := strings.Builder{}
	sb.Grow(len(in) + len(in)/3)

	for i, b := range []byte(in) {
		separate := false
		switch {
		case 'a' <= b && b <= 'z':
			b -= 'a' - 'A'
		case 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
			separate = i > 0
		case b == '_' || b == '-':
			if i > 0 {
				sb.WriteByte('_')
			}
			continue
		}
		if separate {
			sb.WriteByte('_')
		}
		sb.WriteByte(b)
	}

	return sb.String()
}

func walkStruct(val reflect.Value, consumer fn.TriConsumer[reflect.Value, reflect.Type, []string], path ...string) {
	consumer(val, val.Type(), path)

	for val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface {
		val = val.Elem()
	}
	if !val.IsValid() || val.Kind() != reflect.Struct {
		return
	}

	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		walkStruct(val.Field(i), consumer, append(path, field.Name)...)
	}
}

func createNilStructs(val reflect.Value, typ reflect.Type, _ []string) {
	if typ.Kind() == reflect.Pointer &&
		val.IsNil() &&
		typ.Elem().Kind() == reflect.Struct &&
		val.CanSet() {

		val.Set(reflect.New(typ.Elem()))
	}
}

var withDefaultType = reflect.TypeOf((*WithDefault)(nil)).Elem()

func callApplyDefault(val reflect.Value, typ reflect.Type, _ []string) {
	if typ.Implements(withDefaultType) && val.IsValid() && !(typ.Kind() == reflect.Pointer && val.IsNil()) {
		val.Interface().(WithDefault).ApplyDefault()
	}
}
