// Package templating renders text templates containing "[[ ... ]]"
// directives against a value.Vars mapping.
//
// Supported directives:
//
//	[[ name ]]                        substitute name, escaping < and >
//	[[ html:name ]]                   substitute name unescaped
//	[[ if:a ]] ... [[ endif ]]        keep the block when a is truthy
//	[[ if:a:b ]] ... [[ endif ]]      keep the block when a equals b
//	[[ if:a:!b ]] ... [[ endif ]]     keep the block when a differs from b
//	[[ for:list:item:i:max ]] ... [[ endfor ]]
//	                                  repeat the block per list element
//	[[ component:name ]]              inline a rendered component file
//
// Names may be dotted paths into nested maps ("post.author.name"). The
// item, index and max names of a for directive are optional and are
// written into the caller's Vars without scoping: they stay visible after
// the loop and are shared with enclosing loops and components.
//
// Multi-line substitutions are re-indented to the column of the line
// they are inserted on. Components are loaded from
// TemplatesDir/ComponentsDir and may nest up to MaxComponentDepth levels.
//
// The interpreter walks a flat token list with a cursor and an explicit
// loop stack, so nesting of for and if blocks does not grow the call
// stack.
package templating
