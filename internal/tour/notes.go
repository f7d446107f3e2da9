package tour

const notesVectors = `# Creating and growing sequences

A sequence starts empty (` + "`seq.New`" + `) or with values (` + "`seq.Of`" + `).
` + "`Push`" + ` appends; the backing slice grows as needed.
All elements share one type.`

const notesScope = `# Scoped sequences

A value declared inside ` + "`{ ... }`" + ` cannot be named after the closing
brace. Go reclaims its memory through the garbage collector once nothing
refers to it, rather than at the brace itself.`

const notesAccess = `# Indexing and optional lookup

- ` + "`At(i)`" + ` panics when ` + "`i`" + ` is out of range. The process aborts
  unless something recovers.
- ` + "`Get(i)`" + ` returns ` + "`(value, ok)`" + ` and never panics.

Use ` + "`Get`" + ` when the index comes from outside the program.
A copy returned by ` + "`At`" + ` stays valid even if the sequence grows.`

const notesIterate = `# Read-only and in-place iteration

` + "`Each`" + ` hands the callback a copy, so changes are lost.
` + "`EachMut`" + ` hands it a pointer to the element; writing through it
updates the sequence in place. The length never changes.`

const notesCells = `# Mixed values through a tagged union

A sequence holds one type. ` + "`cell.Cell`" + ` is a closed interface with
three variants (` + "`Int`, `Float`, `Text`" + `) so one sequence can carry
all three. A type switch recovers the payload.`

const notesStrings = `# Building UTF-8 text

Text is UTF-8 bytes. Every greeting below is valid whatever the script,
but byte length, rune count and grapheme count disagree once characters
need more than one byte or more than one code point.`

const notesPush = `# Appending to a text buffer

` + "`PushStr`" + ` appends a string and ` + "`Push`" + ` appends one rune.
The appended string is only read, so it stays usable afterwards.`

const notesConcat = `# Consuming and borrowing concatenation

` + "`Plus`" + ` hands the left buffer's storage to the result. The left
operand is spent and using it again panics. Formatting reads its operands
and leaves all of them usable.`

const notesSlicing = `# Byte ranges and character iteration

Byte offsets are not character offsets. In ` + "`Здравствуйте`" + ` every
character takes two bytes, so ` + "`[0:4]`" + ` is ` + "`Зд`" + ` while
` + "`[0:1]`" + ` would cut ` + "`З`" + ` in half and is refused.

Iterate by rune, by byte, or by grapheme cluster instead of slicing.`

const notesMaps = `# Building maps

Maps are built by assignment, or by zipping a key slice with a value slice
of the same length. ` + "`kv.Move`" + ` stores a key and value and clears the
source variables so the map is their only holder.`

const notesEntries = `# Lookup, overwrite and insert-if-absent

- Lookup returns ` + "`(value, ok)`" + `.
- Assignment overwrites.
- ` + "`InsertIfAbsent`" + ` keeps an existing value and stores the default
  only for a new key.

Map iteration order is unspecified; output here is sorted by key.`

const notesWordFreq = `# Counting words

The text is split on whitespace only. Punctuation stays attached, so
` + "`Rust.`" + ` and ` + "`Rust`" + ` are different words.`
