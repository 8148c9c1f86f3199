/*
 * doc.go, part of goTPS.
 *
 * Copyright 2026 Raul Mera <rmeraa{at}academicosDOTutaDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*
Package ptf implements the path trajectory format, the archive format
goTPS uses to store sampled transition paths. ptf aims to produce
reasonably small files while remaining trivial to parse, so
readers/writers can easily be implemented in other languages.

A ptf file only contains ASCII symbols, and is compressed. The
compression is selected from the last letter of the filename:
'z' for gzip, 'r' for flate, and 's' or 'f' for z-standard, which
is also the default for any other letter.

A ptf file has a header starting in the first line and ending with a
line that starts with "**" followed by one or more spaces and the
number of atoms per frame. Each previous header line is a key=value
pair.

After the header come path records. A record starts with a line
beginning with "&&", followed by space-separated key=value metadata
pairs. The pairs vel=0|1 (whether frames carry velocities) and
frames=N (the number of frames in the record) are written by this
package; the rest (MC step, ensemble, mover, anything else) are up to
the caller.

Each frame of a record consists of one line per atom with the
coordinates (and, if vel=1, the velocities) as integers, scaled by
10^prec (prec defaults to 3, and can be set in the file header). A
frame ends with a line containing "*", alone or followed by 9 box
vector components.
*/
package ptf
