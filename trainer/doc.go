/*
Package trainer contains the data model of the oscilloscope trainer.

The Model struct holds the whole state of the simulated instrument: the power
switch, the probe, the three rotary controls, RUN/STOP, the tutorial progress
and the feedback messages shown to the user.

The front end does not modify the Model data directly. Controls are operated
either by resolving a pointer ray against the panel, with model.Activate(ray,
direction), or by kind, with model.Apply(kind, params). Both end up in
model.Control(kind, params), which returns an Action; the settings themselves
are also exposed as Bool and Int values, e.g. model.Timebase().Add(1) turns the
TIME/DIV knob one step.

The model is not safe for concurrent use. The frame driver calls
model.Tick(dt) once per displayed frame and renders the returned Status; input
from other goroutines, such as a MIDI controller, is queued in the Broker and
applied at the start of the next tick.
*/
package trainer
