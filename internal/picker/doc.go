// Package picker implements a single-selection list control whose options
// render arbitrary content.
//
// Callers build an option sequence from any Renderable, attaching a typed tag
// to each option with WithTag. The tag rides alongside the content: the
// content never learns about selection, and ReadTag recovers the tag when the
// list is built. Options can be grouped (Build), generated from a collection
// (ForEach) or wrapped in a style (Styled) without losing their tags.
//
// A Picker renders a caller-supplied label as its trigger. Activating the
// trigger pushes a List screen onto the navigation stack. The list derives
// each row's selected state from the shared binding on every render, writes
// the chosen tag back through that same binding and then asks to be
// dismissed:
//
//	sel := binding.New(picker.None[Item]())
//	p := picker.New[picker.Optional[Item]](sel,
//	    func() picker.Content[picker.Optional[Item]] {
//	        return picker.Build[picker.Optional[Item]](
//	            picker.WithTag(picker.Text("No item"), picker.None[Item]()),
//	            picker.ForEach(items, func(it Item) picker.Option[picker.Optional[Item]] {
//	                return picker.WithTag(ItemView{it}, picker.Some(it))
//	            }),
//	        )
//	    },
//	    func() picker.Renderable { return picker.Text("Pick something") },
//	)
//
// Rows without a tag still render and still dismiss the list when activated,
// but never become the selection.
package picker
