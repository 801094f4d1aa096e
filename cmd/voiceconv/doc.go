// Command voiceconv converts audio files into two-way radio voice
// announcement formats by driving FFmpeg.
//
// Common invocations:
//
//	voiceconv convert prompt.wav -p mototrbo-mva -o ~/cps/voice
//	voiceconv profiles
//	voiceconv inspect ~/cps/voice/prompt.mva
//	voiceconv status
package main
