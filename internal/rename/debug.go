package rename

import "github.com/k0kubun/pp/v3"

func (op Operation) String() string {
	p := pp.New()
	p.SetColoringEnabled(false)
	return p.Sprint(op)
}

// String dumps the whole plan, for debug logs.
func (p *Plan) String() string {
	printer := pp.New()
	printer.SetColoringEnabled(false)
	return printer.Sprint(*p)
}
