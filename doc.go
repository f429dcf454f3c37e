/*
Screen Edit

A FORTH block file is a flat file of fixed size screens. Each screen is
16 lines of 64 characters, 1024 bytes, with no newlines, no header and
no metadata. Screen n lives at byte offset n*1024. That layout is
pleasant for a FORTH system and unpleasant for a person with a text
editor.

screenedit bridges the two. It pulls one screen out of the block file,
writes it to a temporary text file as ordinary lines (trailing spaces
dropped), runs your editor on that file, and then folds the text back
into a fixed size screen. The block file is only written if the screen
actually changed.

The major components of this project:

1. file - fixed size block reads and writes against an existing file.
Short blocks at the end of the file are padded with spaces.

2. screen - converting between the on disk screen and the editable text
form. Anything outside of printable ASCII becomes a space.

3. editor - picking an editor, running it, and the read/edit/write
session that ties it together.

4. errors - just a simple error package which maintains a stack trace
with every error.

5. screenedit - the command line tool.

Nothing here locks the block file. Two screenedit processes editing the
same screen will race and the last one to write wins.

*/
package screenedit
