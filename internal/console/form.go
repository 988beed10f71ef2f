package console

import (
	"github.com/gorilla/schema"

	"github.com/vancomm/sweeper/internal/mines"
)

type OptionsForm struct {
	Height int `schema:"height,required"`
	Width  int `schema:"width,required"`
	Mines  int `schema:"mines,required"`
}

var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}

// ParseOptionsForm turns the new-game form fields into validated board
// params.
func ParseOptionsForm(src map[string][]string) (mines.BoardParams, error) {
	var form OptionsForm
	if err := formDecoder.Decode(&form, src); err != nil {
		return mines.BoardParams{}, err
	}
	params := mines.BoardParams(form)
	if err := params.Validate(); err != nil {
		return mines.BoardParams{}, err
	}
	return params, nil
}
