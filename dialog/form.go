// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

// Form shows labelled fields and returns what was entered, in field order.
// Fields with a non-plain Kind turn the call into a mixedform.
func (s *Session) Form(text string, fields []FormField, height, width, formHeight int) (FormValues, error) {
	widget := "form"
	if hasFieldKinds(fields) {
		widget = "mixedform"
	}
	return s.form(widget, text, fields, height, width, formHeight)
}

// MixedForm is a form where each field's Kind is passed to dialog.
func (s *Session) MixedForm(text string, fields []FormField, height, width, formHeight int) (FormValues, error) {
	return s.form("mixedform", text, fields, height, width, formHeight)
}

// PasswordForm is a form whose every field is hidden.
func (s *Session) PasswordForm(text string, fields []FormField, height, width, formHeight int) (FormValues, error) {
	return s.form("passwordform", text, fields, height, width, formHeight)
}

func (s *Session) form(widget, text string, fields []FormField, height, width, formHeight int) (FormValues, error) {
	mixed := widget == "mixedform"
	if !mixed {
		for i, f := range fields {
			if !f.Kind.valid() {
				return nil, invalidItem(i, "unknown field kind %d", int(f.Kind))
			}
		}
	}
	res, err := s.invoke(request{
		widget: widget,
		args: withItems(append([]string{text}, dims(height, width, formHeight)...), func(Options) ([]string, error) {
			return formArgs(fields, mixed)
		}),
		output: outputOnExtra,
	})
	if err != nil {
		return nil, err
	}
	if !res.decode {
		return FormValues{}, nil
	}
	return decodeForm(res.data, fields, res.opts), nil
}
