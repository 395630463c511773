package entities

import (
	"bytes"
	"encoding/gob"
)

// Orders and carts are cached and kept by the memory store as gob blobs.

func (o *Order) Marshal() ([]byte, error) {
	return encode(o)
}

func (o *Order) Unmarshal(data []byte) error {
	return decode(data, o)
}

func (c *ShoppingCart) Marshal() ([]byte, error) {
	return encode(c)
}

func (c *ShoppingCart) Unmarshal(data []byte) error {
	return decode(data, c)
}

// Clone returns a deep copy of the order.
func (o *Order) Clone() (*Order, error) {
	data, err := o.Marshal()
	if err != nil {
		return nil, err
	}
	var out Order
	if err := out.Unmarshal(data); err != nil {
		return nil, err
	}
	return &out, nil
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(data []byte, v any) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(v)
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderShipment{})
	gob.Register(OrderSku{})
	gob.Register(OrderPayment{})
	gob.Register(ShoppingCart{})
	gob.Register(CartItem{})
}
